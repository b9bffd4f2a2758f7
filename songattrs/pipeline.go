package songattrs

import (
	"context"

	"github.com/mager/broca/broca"
	"github.com/mager/broca/checkpoint"
	"go.uber.org/zap"
)

// Pipeline is the one-shot scraper run: resolve every song not yet in
// the checkpoint, then fetch audio features for everything resolved and
// write the merged table.
type Pipeline struct {
	log      *zap.SugaredLogger
	resolver *Resolver
	fetcher  *Fetcher
	store    *checkpoint.Store
}

func NewPipeline(log *zap.SugaredLogger, resolver *Resolver, fetcher *Fetcher, store *checkpoint.Store) *Pipeline {
	return &Pipeline{
		log:      log,
		resolver: resolver,
		fetcher:  fetcher,
		store:    store,
	}
}

// Run executes the pipeline. It is safe to call repeatedly: songs
// already in the checkpoint, matched or missed, are never re-queried.
func (p *Pipeline) Run(ctx context.Context, songs []broca.Song, outPath string) error {
	p.log.Infof("Number of planned queries %d", len(songs))

	for i, song := range songs {
		p.log.Infof("Processed %d/%d", i, len(songs))

		if p.store.Seen(song.Artist, song.Title) {
			continue
		}

		entry, err := p.resolver.Resolve(ctx, song.Artist, song.Title)
		if err != nil {
			return err
		}
		if !entry.Matched {
			p.log.Warnw("recording song as missing", "artist", song.Artist, "title", song.Title)
		}

		if err := p.store.Append(entry); err != nil {
			p.log.Errorw("could not write checkpoint entry",
				"artist", song.Artist, "title", song.Title, "error", err)
		}
	}

	resolved := p.store.Resolved()
	p.log.Infow("lookup summary",
		"total", p.store.Len(),
		"identified", len(resolved),
	)

	attrs, err := p.fetcher.FetchAttributes(ctx, resolved)
	if err != nil {
		return err
	}

	return WriteAttributes(outPath, attrs)
}
