package logger

import "log/slog"

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under the key "error". A nil err yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Algorithm records a signing algorithm identifier under the key "alg".
func Algorithm(name string) slog.Attr {
	return slog.String("alg", name)
}

// TokenID records a "jti" value under the key "token_id".
// An empty id yields an empty Attr.
func TokenID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("token_id", id)
}

// Subject records a "sub" value under the key "subject".
// An empty subject yields an empty Attr.
func Subject(sub string) slog.Attr {
	if sub == "" {
		return slog.Attr{}
	}
	return slog.String("subject", sub)
}

// Claim records the name of the claim a rule inspected.
func Claim(name string) slog.Attr {
	return slog.String("claim", name)
}
