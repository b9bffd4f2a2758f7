package broca

// Song is one entry from the survey song list.
type Song struct {
	Artist string `json:"artist"`
	Title  string `json:"title"`
}

// SongAttributes is the merged record for one resolved song: the
// identification fields from the search step plus the audio descriptors
// from the batch feature lookup.
type SongAttributes struct {
	Artist   string `json:"artist"`
	Title    string `json:"title"`
	SourceID string `json:"source_id"`
	Source   string `json:"source"`

	// Popularity is the track popularity at resolution time.
	// Range: 0 - 100
	Popularity int `json:"popularity"`

	Meta     TrackMeta     `json:"meta"`
	Features TrackFeatures `json:"features"`
}

type TrackMeta struct {
	// DurationMs is the duration of the track in milliseconds.
	// Example: 237040
	DurationMs int `json:"duration_ms"`
	// Key is the key the track is in. Integers map to pitches using standard Pitch Class notation. E.g. 0 = C, 1 = C♯/D♭, 2 = D, and so on. If no key was detected, the value is -1.
	// Range: -1 - 11
	// Example: 9
	Key int `json:"key"`
	// Mode indicates the modality (major or minor) of a track, the type of scale from which its melodic content is derived.
	// Major is represented by 1 and minor is 0.
	// Example: 0
	Mode int `json:"mode"`
	// Tempo is the overall estimated tempo of a track in beats per minute (BPM). In musical terminology, tempo is the speed or pace of a given piece and derives directly from the average beat duration.
	// Example: 118.211
	Tempo float32 `json:"tempo"`
	// TimeSignature is an estimated time signature. The time signature (meter) is a notational convention to specify how many beats are in each bar (or measure).
	// The time signature ranges from 3 to 7 indicating time signatures of "3/4", to "7/4".
	// Range: 3 - 7
	// Example: 4
	TimeSignature int `json:"time_signature"`
}

type TrackFeatures struct {
	// Acousticness is a confidence measure from 0.0 to 1.0 of whether the track is acoustic.
	// 1.0 represents high confidence the track is acoustic.
	// Example: 0.00242
	Acousticness float32 `json:"acousticness"`
	// Danceability describes how suitable a track is for dancing based on a combination of
	// musical elements including tempo, rhythm stability, beat strength, and overall regularity.
	// A value of 0.0 is least danceable and 1.0 is most danceable.
	// Example: 0.585
	Danceability float32 `json:"danceability"`
	// Energy is a measure from 0.0 to 1.0 and represents a perceptual measure of intensity
	// and activity. Typically, energetic tracks feel fast, loud, and noisy.
	// Example: 0.842
	Energy float32 `json:"energy"`
	// Instrumentalness predicts whether a track contains no vocals. The closer the value is
	// to 1.0, the greater likelihood the track contains no vocal content.
	// Example: 0.00686
	Instrumentalness float32 `json:"instrumentalness"`
	// Liveness detects the presence of an audience in the recording. A value above 0.8
	// provides strong likelihood that the track is live.
	// Example: 0.0866
	Liveness float32 `json:"liveness"`
	// Loudness is the overall loudness of a track in decibels (dB), averaged across the track.
	// Values typically range between -60 and 0 db.
	// Example: -5.883
	Loudness float32 `json:"loudness"`
	// Speechiness detects the presence of spoken words in a track. Values above 0.66 describe
	// tracks that are probably made entirely of spoken words.
	// Example: 0.0556
	Speechiness float32 `json:"speechiness"`
	// Valence is a measure from 0.0 to 1.0 describing the musical positiveness conveyed by a
	// track. Tracks with high valence sound more positive (e.g. happy, cheerful, euphoric).
	// Range: 0 - 1
	// Example: 0.428
	Valence float32 `json:"valence"`
}
