package rng

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNew(t *testing.T) {
	a := assert.New(t)

	g, err := New("", 0)
	a.NoError(err)
	a.Equal(Crypto{}, g)

	g, err = New("crypto", 0)
	a.NoError(err)
	a.Equal(Crypto{}, g)

	g, err = New("seeded", 42)
	a.NoError(err)
	if a.IsType(&Seeded{}, g) {
		a.Equal(int64(42), g.(*Seeded).Seed())
	}

	g, err = New("dice", 0)
	a.Nil(g)
	a.EqualError(err, "unknown random source: dice")
}

func TestSeeded_Intn(t *testing.T) {
	a := assert.New(t)

	s1 := NewSeeded(7)
	s2 := NewSeeded(7)
	for i := 0; i < 100; i++ {
		n := s1.Intn(52)
		a.Equal(n, s2.Intn(52))
		a.True(n >= 0 && n < 52)
	}

	a.NotEqual(int64(0), NewSeeded(0).Seed())
}

func TestFixed_Intn(t *testing.T) {
	a := assert.New(t)

	f := NewFixed(3, 7, -1)
	a.Equal(3, f.Intn(5))
	a.Equal(2, f.Intn(5))
	a.Equal(4, f.Intn(5))

	// exhausted
	a.Equal(9, f.Intn(10))
	a.Equal(0, f.Intn(1))
}
