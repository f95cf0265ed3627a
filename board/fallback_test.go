package board

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestResolveDestination(t *testing.T) {
	tests := map[string]struct {
		raw  string
		want string
	}{
		"ascii hyphen":         {`{"route": "Kyiv - Lviv"}`, "Lviv"},
		"arrow glyph":          {`{"route": "Kyiv→Lviv"}`, "Lviv"},
		"ascii arrow":          {`{"route": "Kyiv->Lviv"}`, "Lviv"},
		"non-breaking spaces":  {`{"route": "Kyiv\u00a0-\u00a0Lviv"}`, "Lviv"},
		"first separator wins": {`{"route": "Kyiv - Lviv - Uzhhorod"}`, "Lviv - Uzhhorod"},
		"hyphenated name":      {`{"route": "Ivano-Frankivsk"}`, "Ivano-Frankivsk"},
		"no separator":         {`{"route": "  Kharkiv  "}`, "Kharkiv"},
		"trailing separator":   {`{"route": "Kyiv - "}`, UnknownDestination},
		"trailing arrow":       {`{"route": "Kyiv -> "}`, UnknownDestination},
		"explicit wins":        {`{"route": "Kyiv - Lviv", "destination": {"name": "Przemysl"}}`, "Przemysl"},
		"blank explicit":       {`{"route": "Kyiv - Lviv", "destination": {"name": " "}}`, "Lviv"},
		"explicit only":        {`{"destination": {"name": "Chop"}}`, "Chop"},
		"empty route":          {`{"route": "   "}`, UnknownDestination},
		"route wrong type":     {`{"route": 12}`, UnknownDestination},
		"nothing":              {`{}`, UnknownDestination},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, resolveDestination(entry(t, tc.raw)))
		})
	}
}

func TestCleanRoute(t *testing.T) {
	assert.Equal(t, "Kyiv - Lviv", cleanRoute(entry(t, `{"route": "Kyiv→Lviv"}`)))
	assert.Equal(t, "Kyiv - Lviv", cleanRoute(entry(t, `{"route": " Kyiv  ->  Lviv "}`)))
	assert.Equal(t, "", cleanRoute(entry(t, `{}`)))
}

func TestResolveTrainNumber(t *testing.T) {
	tests := map[string]struct {
		raw  string
		want string
	}{
		"cyrillic suffix": {`{"train": "97К"}`, "97"},
		"number":          {`{"train": 749}`, "749"},
		"mixed":           {`{"train": "IC+ 743/744"}`, "743744"},
		"no digits":       {`{"train": "EXP"}`, "EXP"},
		"empty":           {`{"train": ""}`, NoTrainNumber},
		"blank":           {`{"train": "  "}`, NoTrainNumber},
		"absent":          {`{}`, NoTrainNumber},
		"object":          {`{"train": {"n": 1}}`, NoTrainNumber},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, resolveTrainNumber(entry(t, tc.raw)))
		})
	}
}

func TestDestinationStrategies_Order(t *testing.T) {
	e := entry(t, `{"route": "Kyiv - Lviv", "destination": {"name": "Chop"}}`)

	var got []string
	for _, s := range destinationStrategies {
		if v, ok := s(e); ok {
			got = append(got, v)
		}
	}

	// the whole route only stands in when there is no separator to split on
	assert.Equal(t, []string{"Chop", "Lviv"}, got)

	v, ok := wholeRoute(entry(t, `{"route": " Kharkiv "}`))
	assert.True(t, ok)
	assert.Equal(t, "Kharkiv", v)
}
