package urldedup

import (
	"net/url"
	"strconv"
	"strings"

	"pkg.jsn.cam/yamr/pkg/yamr"
)

// URLDedupWorker deduplicates URLs per domain.
// Input: URLs, one per line
// Output: "domain unique_url_count"
type URLDedupWorker struct{}

func (w URLDedupWorker) NewMapper() yamr.Mapper {
	return Mapper{}
}

func (w URLDedupWorker) NewReducer() yamr.Reducer {
	return &Reducer{}
}

func (w URLDedupWorker) Description() string {
	return "Deduplicates URLs per domain and counts unique URLs"
}

// Mapper emits "domain url" for every parseable URL.
type Mapper struct{}

func (Mapper) Map(line string, emit yamr.Emitter) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	u, err := url.Parse(line)
	if err != nil || u.Host == "" {
		return nil // Skip invalid URLs
	}

	emit(u.Host + " " + line)
	return nil
}

// Reducer counts distinct URLs per domain. Identical records are adjacent
// in a sorted partition, so comparing with the previous record is enough.
type Reducer struct {
	domain string
	prev   string
	unique int
}

func (r *Reducer) Reduce(record string, emit yamr.Emitter) error {
	domain, _, found := strings.Cut(record, " ")
	if !found {
		return nil
	}

	if r.unique > 0 && domain != r.domain {
		r.flush(emit)
	}
	if record != r.prev {
		r.unique++
	}
	r.domain = domain
	r.prev = record
	return nil
}

// Finish emits the count of the last domain.
func (r *Reducer) Finish(emit yamr.Emitter) error {
	if r.unique > 0 {
		r.flush(emit)
	}
	return nil
}

func (r *Reducer) flush(emit yamr.Emitter) {
	emit(r.domain + " " + strconv.Itoa(r.unique))
	r.unique = 0
}
