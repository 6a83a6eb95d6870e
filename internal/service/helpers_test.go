package service

import (
	"fmt"
	"time"
)

// sequentialIDs hands out predictable identifiers: id-1, id-2, ...
type sequentialIDs struct {
	n int
}

func (g *sequentialIDs) Generate() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func clock() time.Time {
	return fixedNow
}
