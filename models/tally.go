// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Tally holds the vote count for every choice, indexed by Choice
type Tally [numChoices]int

// Count returns the votes for c. Invalid choices have no votes.
func (t Tally) Count(c Choice) int {
	if !c.Valid() {
		return 0
	}
	return t[c]
}

// Total is the sum of all counts
func (t Tally) Total() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}

// Percentages returns each choice's share of the total, rounded to one
// decimal place. Every share is 0 when no votes have been cast.
func (t Tally) Percentages() Percentages {
	var p Percentages
	total := t.Total()
	if total == 0 {
		return p
	}
	for i, n := range t {
		p[i] = roundTenth(float64(n) / float64(total) * 100)
	}
	return p
}

func (t Tally) MarshalJSON() ([]byte, error) {
	return marshalByChoice(t)
}

func (t *Tally) UnmarshalJSON(data []byte) error {
	return unmarshalByChoice(data, (*[numChoices]int)(t))
}

// Percentages holds each choice's share of the vote, indexed by Choice
type Percentages [numChoices]float64

// Of returns the share for c
func (p Percentages) Of(c Choice) float64 {
	if !c.Valid() {
		return 0
	}
	return p[c]
}

func (p Percentages) MarshalJSON() ([]byte, error) {
	return marshalByChoice(p)
}

func (p *Percentages) UnmarshalJSON(data []byte) error {
	return unmarshalByChoice(data, (*[numChoices]float64)(p))
}

// roundTenth rounds the exact binary value of x to one decimal place,
// breaking ties to even: 6.25 becomes 6.2 and 93.75 becomes 93.8.
func roundTenth(x float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 1, 64), 64)
	return r
}

// marshalByChoice writes an object keyed by choice name in declaration order.
// encoding/json would sort map keys, putting "javascript" first.
func marshalByChoice[T int | float64](vals [numChoices]T) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, v := range vals {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(choiceNames[i])
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func unmarshalByChoice[T int | float64](data []byte, dst *[numChoices]T) error {
	var raw map[string]T
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var out [numChoices]T
	for name, v := range raw {
		c, err := ParseChoice(name)
		if err != nil {
			return fmt.Errorf("decode tally: %w", err)
		}
		out[c] = v
	}
	*dst = out
	return nil
}
