package ident

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Generator hands out booking ids and PNR numbers. Passed to services
// as an explicit dependency instead of living in package globals.
type Generator interface {
	NextBookingID() string
	NextPNR() string
}

const (
	bookingIDBase = 10000
	pnrBase       = 8000000000
)

// CounterGenerator is the memory-mode generator: sequential counters
// matching the legacy numbering (booking ids from 10000, 10-digit
// PNRs from 8000000000).
type CounterGenerator struct {
	bookingID atomic.Int64
	pnr       atomic.Int64
}

func NewCounterGenerator() *CounterGenerator {
	g := &CounterGenerator{}
	g.bookingID.Store(bookingIDBase)
	g.pnr.Store(pnrBase)
	return g
}

func (g *CounterGenerator) NextBookingID() string {
	return strconv.FormatInt(g.bookingID.Add(1), 10)
}

func (g *CounterGenerator) NextPNR() string {
	return strconv.FormatInt(g.pnr.Add(1), 10)
}

// CloudGenerator issues globally-unique booking ids suitable for a
// shared store. PNRs stay counter-based so the sequence remains
// monotonic within a process.
type CloudGenerator struct {
	pnr atomic.Int64
	now func() time.Time
}

func NewCloudGenerator() *CloudGenerator {
	g := &CloudGenerator{now: time.Now}
	g.pnr.Store(pnrBase)
	return g
}

func (g *CloudGenerator) NextBookingID() string {
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return fmt.Sprintf("BK%s%s", g.now().Format("20060102150405"), suffix)
}

func (g *CloudGenerator) NextPNR() string {
	return strconv.FormatInt(g.pnr.Add(1), 10)
}

var (
	_ Generator = (*CounterGenerator)(nil)
	_ Generator = (*CloudGenerator)(nil)
)
