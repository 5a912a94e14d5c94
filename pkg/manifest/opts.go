package manifest

import (
	"github.com/arthur-debert/charon/pkg/actions"
	"github.com/arthur-debert/charon/pkg/errors"
)

// ParseOpts decodes an option token. Octal digits accumulate into the
// permission value left to right; letters toggle flags. An empty token
// yields the zero Opts.
func ParseOpts(token string) (actions.Opts, error) {
	var opts actions.Opts
	for _, c := range token {
		switch {
		case c >= '0' && c <= '7':
			opts.Perms = opts.Perms*8 + uint32(c-'0')
		case c == 'e':
			opts.StripExt = true
		case c == 'E':
			opts.StripExt = false
		case c == 'o':
			opts.Overwrite = true
		case c == 'O':
			opts.Overwrite = false
		case c == 'p':
			opts.CreatePath = true
		case c == 'P':
			opts.CreatePath = false
		case c == '_':
			opts.CopyUnderscoreFiles = true
		case c == '.':
			opts.CopyDotFiles = true
		default:
			return actions.Opts{}, errors.Newf(errors.ErrUnknownOpt, "unknown opt: '%c'", c).
				WithDetail("token", token)
		}
	}
	return opts, nil
}
