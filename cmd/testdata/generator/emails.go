package generator

import (
	"io"
	"math/rand/v2"
	"strconv"
)

// EmailGenerator writes one email address per line. Addresses are drawn from
// a fixed pool so the file holds many duplicates and shared prefixes.
type EmailGenerator struct {
	AddressCount int
	rand         *rand.Rand
	pool         [][]byte
}

var firstNames = []string{
	"Alice", "Bob", "Carol", "Dave", "Eve", "Frank", "Grace", "Heidi",
	"Ivan", "Judy", "Mallory", "Niaj", "Olivia", "Peggy", "Rupert", "Sybil",
	"Trent", "Victor", "Walter", "Yvonne",
}

var lastNames = []string{
	"smith", "johnson", "williams", "brown", "jones", "garcia", "miller",
	"davis", "martinez", "lopez", "wilson", "anderson", "taylor", "moore",
}

var mailDomains = []string{
	"gmail.com", "yahoo.com", "outlook.com", "mail.ru", "yandex.ru",
	"proton.me", "example.org", "corp.example.com",
}

func (g *EmailGenerator) Init(r *rand.Rand) {
	g.rand = r
	if g.AddressCount <= 0 {
		g.AddressCount = 1000
	}

	g.pool = make([][]byte, g.AddressCount)
	for i := range g.pool {
		local := pick(r, firstNames)
		switch r.IntN(3) {
		case 0:
			local += "." + pick(r, lastNames)
		case 1:
			local += strconv.Itoa(r.IntN(100))
		}
		g.pool[i] = []byte(local + "@" + pick(r, mailDomains) + "\n")
	}
}

func (g *EmailGenerator) WriteLine(w io.Writer) error {
	_, err := w.Write(g.pool[g.rand.IntN(len(g.pool))])
	return err
}

func (g *EmailGenerator) Description() string {
	return "Email addresses, one per line (for dupprefix)"
}

func (g *EmailGenerator) DefaultCount() int64 {
	return 1e5
}
