package generator

import (
	"io"
	"math/rand/v2"
	"strconv"
)

// ActionGenerator writes user action logs: "{user_id} did {action}"
type ActionGenerator struct {
	UserCount int
	rand      *rand.Rand
	pool      [][]byte
}

var actions = []string{
	"login",
	"logout",
	"viewed product",
	"added to cart",
	"removed from cart",
	"purchased",
	"reviewed product",
	"updated profile",
	"changed password",
	"subscribed to newsletter",
}

const actionPoolSize = 10000

func (g *ActionGenerator) Init(r *rand.Rand) {
	g.rand = r
	if g.UserCount <= 0 {
		g.UserCount = 100
	}

	g.pool = make([][]byte, actionPoolSize)
	for i := range g.pool {
		user := "user_" + strconv.Itoa(r.IntN(g.UserCount))
		g.pool[i] = []byte(user + " did " + pick(r, actions) + "\n")
	}
}

func (g *ActionGenerator) WriteLine(w io.Writer) error {
	_, err := w.Write(g.pool[g.rand.IntN(len(g.pool))])
	return err
}

func (g *ActionGenerator) Description() string {
	return "User action logs: {user_id} did {action} (for actioncount)"
}

func (g *ActionGenerator) DefaultCount() int64 {
	return 1e4
}
