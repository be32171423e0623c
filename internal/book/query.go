package book

import "net/url"

// ParseFlag decodes a "0"/"1" query flag. Anything other than "1" is false.
func ParseFlag(v string) bool {
	return v == "1"
}

// ParseFilter builds a Filter from list query parameters.
// An empty name is ignored; reading and finished apply whenever present.
func ParseFilter(q url.Values) Filter {
	f := Filter{Name: q.Get("name")}
	if q.Has("reading") {
		v := ParseFlag(q.Get("reading"))
		f.Reading = &v
	}
	if q.Has("finished") {
		v := ParseFlag(q.Get("finished"))
		f.Finished = &v
	}
	return f
}
