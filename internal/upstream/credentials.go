package upstream

// TokenSource yields the bearer token for upstream calls. The shell's
// identity object and the session-persisted fallback both implement it, so
// tests can substitute either.
type TokenSource interface {
	Token() string
}

type StaticToken string

func (s StaticToken) Token() string { return string(s) }

// Chain resolves to the first source with a non-empty token.
type Chain []TokenSource

func (c Chain) Token() string {
	for _, s := range c {
		if s == nil {
			continue
		}
		if t := s.Token(); t != "" {
			return t
		}
	}
	return ""
}
