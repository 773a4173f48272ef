// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestParseChoice(t *testing.T) {
	testCases := []struct {
		input   string
		want    Choice
		wantErr bool
	}{
		{"python", Python, false},
		{"javascript", JavaScript, false},
		{"", 0, true},
		{"rust", 0, true},
		{"Python", 0, true},
		{" python", 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseChoice(tc.input)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidChoice) {
					t.Errorf("Expected ErrInvalidChoice for %q, got %v", tc.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("Expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestChoiceString(t *testing.T) {
	for _, c := range Choices() {
		parsed, err := ParseChoice(c.String())
		if err != nil {
			t.Fatalf("String of %d did not parse back: %v", int(c), err)
		}
		if parsed != c {
			t.Errorf("Expected %v, got %v", c, parsed)
		}
	}

	if Choice(7).Valid() {
		t.Error("Choice(7) should not be valid")
	}
	if Choice(-1).Valid() {
		t.Error("Choice(-1) should not be valid")
	}
}

func TestTallyTotal(t *testing.T) {
	var tally Tally
	if tally.Total() != 0 {
		t.Errorf("Expected empty tally total 0, got %d", tally.Total())
	}

	tally[Python] = 3
	tally[JavaScript] = 1
	if tally.Total() != 4 {
		t.Errorf("Expected total 4, got %d", tally.Total())
	}
	if tally.Count(Choice(9)) != 0 {
		t.Error("Invalid choice should count 0")
	}
}

func TestTallyPercentages(t *testing.T) {
	testCases := []struct {
		name   string
		python int
		js     int
		wantPy float64
		wantJS float64
	}{
		{"no votes", 0, 0, 0, 0},
		{"three to one", 3, 1, 75.0, 25.0},
		{"unanimous", 5, 0, 100.0, 0},
		{"thirds", 1, 2, 33.3, 66.7},
		{"sevenths", 1, 6, 14.3, 85.7},
		{"even split", 2, 2, 50.0, 50.0},
		{"sixteenths", 1, 15, 6.2, 93.8},
		{"five sixteenths", 5, 11, 31.2, 68.8},
		{"three thirty-seconds", 3, 29, 9.4, 90.6},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tally := Tally{Python: tc.python, JavaScript: tc.js}
			p := tally.Percentages()

			if p.Of(Python) != tc.wantPy {
				t.Errorf("Expected python %.1f, got %v", tc.wantPy, p.Of(Python))
			}
			if p.Of(JavaScript) != tc.wantJS {
				t.Errorf("Expected javascript %.1f, got %v", tc.wantJS, p.Of(JavaScript))
			}
		})
	}
}

func TestTallyPercentagesSumToHundred(t *testing.T) {
	for py := 0; py <= 25; py++ {
		for js := 0; js <= 25; js++ {
			if py+js == 0 {
				continue
			}
			p := Tally{Python: py, JavaScript: js}.Percentages()
			sum := p.Of(Python) + p.Of(JavaScript)
			if math.Abs(sum-100) > 0.1+1e-9 {
				t.Errorf("python=%d javascript=%d: percentages sum to %v", py, js, sum)
			}
		}
	}
}

func TestTallyJSON(t *testing.T) {
	tally := Tally{Python: 3, JavaScript: 1}

	data, err := json.Marshal(tally)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"python":3,"javascript":1}` {
		t.Errorf("Unexpected encoding: %s", data)
	}

	var decoded Tally
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded != tally {
		t.Errorf("Expected %v, got %v", tally, decoded)
	}

	if err := json.Unmarshal([]byte(`{"rust":1}`), &decoded); !errors.Is(err, ErrInvalidChoice) {
		t.Errorf("Expected ErrInvalidChoice for unknown key, got %v", err)
	}
}

func TestResultsResponseJSON(t *testing.T) {
	tally := Tally{Python: 3, JavaScript: 1}
	resp := ResultsResponse{
		Votes:       tally,
		Total:       tally.Total(),
		Percentages: tally.Percentages(),
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatal(err)
	}

	expected := `{"votes":{"python":3,"javascript":1},"total":4,"percentages":{"python":75,"javascript":25}}`
	if string(data) != expected {
		t.Errorf("Expected %s, got %s", expected, data)
	}
}

func TestVoteRequestDecoding(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{"exact key", `{"choice":"python"}`, "python", false},
		{"extra fields ignored", `{"choice":"javascript","voter":"bob"}`, "javascript", false},
		{"null value", `{"choice":null}`, "", false},
		{"missing key", `{}`, "", true},
		{"capitalized key", `{"Choice":"python"}`, "", true},
		{"uppercase key", `{"CHOICE":"python"}`, "", true},
		{"numeric value", `{"choice":1}`, "", true},
		{"object value", `{"choice":{"name":"python"}}`, "", true},
		{"not an object", `"python"`, "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var req VoteRequest
			err := json.Unmarshal([]byte(tc.body), &req)
			if tc.wantErr {
				if err == nil {
					t.Errorf("Expected error for %s, got choice %q", tc.body, req.Choice)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if req.Choice != tc.want {
				t.Errorf("Expected choice %q, got %q", tc.want, req.Choice)
			}
		})
	}
}

func TestVoteRequestMissingChoiceIsInvalidChoice(t *testing.T) {
	var req VoteRequest
	err := json.Unmarshal([]byte(`{"Choice":"python"}`), &req)
	if !errors.Is(err, ErrInvalidChoice) {
		t.Errorf("Expected ErrInvalidChoice, got %v", err)
	}
}
