package generator

import (
	"io"
	"math/rand/v2"
)

// URLGenerator writes https URLs over a small set of hosts, with many repeats
type URLGenerator struct {
	rand *rand.Rand
}

var hosts = []string{
	"google.com",
	"github.com",
	"stackoverflow.com",
	"reddit.com",
	"wikipedia.org",
	"go.dev",
}

var urlPaths = []string{"", "/home", "/about", "/docs", "/blog", "/search", "/api/v1", "/user/profile"}

var queries = []string{"", "?page=1", "?id=123", "?ref=homepage", "?sort=desc"}

func (g *URLGenerator) Init(r *rand.Rand) {
	g.rand = r
}

func (g *URLGenerator) WriteLine(w io.Writer) error {
	line := "https://" + pick(g.rand, hosts) + pick(g.rand, urlPaths) + pick(g.rand, queries) + "\n"
	_, err := io.WriteString(w, line)
	return err
}

func (g *URLGenerator) Description() string {
	return "URLs: https://host/path?query (for urldedup)"
}

func (g *URLGenerator) DefaultCount() int64 {
	return 5e4
}
