package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/spinadmin/internal/client/filter"
)

// listArgs are the parsed arguments of a list command.
type listArgs struct {
	criteria filter.Criteria
	refresh  bool
}

// parseListArgs reads status=, range= and q= pairs. Bare words join the
// free-text query, except "refresh" which forces a reload. canon maps the
// typed status onto the stored spelling.
func parseListArgs(args []string, canon func(string) string) (listArgs, error) {
	var (
		out   listArgs
		words []string
	)
	for _, arg := range args {
		key, val, ok := strings.Cut(arg, "=")
		if !ok {
			if arg == "refresh" {
				out.refresh = true
				continue
			}
			words = append(words, arg)
			continue
		}

		switch strings.ToLower(key) {
		case "status":
			if canon != nil && val != "" && !strings.EqualFold(val, "all") {
				val = canon(val)
			}
			out.criteria.Status = val
		case "range":
			r, err := filter.ParseRange(val)
			if err != nil {
				return listArgs{}, err
			}
			out.criteria.Range = r
		case "q":
			words = append(words, val)
		default:
			return listArgs{}, fmt.Errorf("unknown filter %q", key)
		}
	}
	out.criteria.Query = strings.Join(words, " ")
	if out.criteria.Range == "" {
		out.criteria.Range = filter.All
	}
	return out, nil
}

func titleCase(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
