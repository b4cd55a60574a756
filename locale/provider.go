package locale

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

// Provider picks the convention that best matches a requested tag.
// It is immutable and safe for concurrent use.
type Provider struct {
	tags        []language.Tag
	conventions []Convention
	matcher     language.Matcher
	logger      zerolog.Logger
}

// NewProvider validates cfg and builds a matcher over its tags. The default
// tag is the fallback for requests that match nothing.
func NewProvider(cfg *Config, logger zerolog.Logger) (*Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Default first: the matcher falls back to index 0.
	keys := make([]string, 0, len(cfg.Locales))
	for key := range cfg.Locales {
		if key != cfg.Default {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	keys = append([]string{cfg.Default}, keys...)

	p := &Provider{
		tags:        make([]language.Tag, 0, len(keys)),
		conventions: make([]Convention, 0, len(keys)),
		logger:      logger.With().Str("component", "locale").Logger(),
	}
	for _, key := range keys {
		tag, err := language.Parse(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidTag, key, err)
		}
		p.tags = append(p.tags, tag)
		p.conventions = append(p.conventions, cfg.Locales[key])
	}
	p.matcher = language.NewMatcher(p.tags)

	p.logger.Debug().
		Str("default", cfg.Default).
		Int("locales", len(p.tags)).
		Msg("locale provider ready")
	return p, nil
}

// Default returns the fallback tag.
func (p *Provider) Default() language.Tag {
	return p.tags[0]
}

// Lookup returns the configured tag closest to the requested one together
// with its convention. Unparseable or unmatched requests get the default.
func (p *Provider) Lookup(tag string) (language.Tag, Convention) {
	requested, err := language.Parse(tag)
	if err != nil {
		p.logger.Warn().
			Err(err).
			Str("requested", tag).
			Str("fallback", p.tags[0].String()).
			Msg("invalid language tag, using default locale")
		return p.tags[0], p.conventions[0]
	}

	_, index, confidence := p.matcher.Match(requested)
	if confidence == language.No {
		p.logger.Warn().
			Str("requested", tag).
			Str("fallback", p.tags[0].String()).
			Msg("no matching locale, using default")
		return p.tags[0], p.conventions[0]
	}

	p.logger.Debug().
		Str("requested", tag).
		Str("matched", p.tags[index].String()).
		Str("confidence", confidence.String()).
		Msg("resolved locale convention")
	return p.tags[index], p.conventions[index]
}

// Formatter returns a Formatter for the convention matching tag.
func (p *Provider) Formatter(tag string) *Formatter {
	_, conv := p.Lookup(tag)
	return NewFormatter(conv)
}
