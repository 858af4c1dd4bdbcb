package bot

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		wantKw   string
		wantArgs []string
		wantOK   bool
	}{
		{name: "bare command", text: "!join", wantKw: "!join", wantArgs: []string{}, wantOK: true},
		{name: "uppercase keyword", text: "!BUY TSLA 2", wantKw: "!buy", wantArgs: []string{"TSLA", "2"}, wantOK: true},
		{name: "leading whitespace", text: "   !price btc", wantKw: "!price", wantArgs: []string{"btc"}, wantOK: true},
		{name: "plain chat", text: "good morning", wantOK: false},
		{name: "empty", text: "", wantOK: false},
		{name: "bang mid sentence", text: "wow !join", wantOK: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kw, args, ok := parseCommand(tc.text)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantKw, kw)
			assert.Equal(t, tc.wantArgs, args)
		})
	}
}

func TestParseShares(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want decimal.Decimal
	}{
		{name: "missing", args: []string{"tsla"}, want: decimal.NewFromInt(1)},
		{name: "integer", args: []string{"tsla", "3"}, want: decimal.NewFromInt(3)},
		{name: "fractional", args: []string{"btc", "0.25"}, want: decimal.RequireFromString("0.25")},
		{name: "garbage", args: []string{"tsla", "lots"}, want: decimal.NewFromInt(1)},
		{name: "zero", args: []string{"tsla", "0"}, want: decimal.NewFromInt(1)},
		{name: "negative", args: []string{"tsla", "-4"}, want: decimal.NewFromInt(1)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, tc.want.Equal(parseShares(tc.args)), "want %s", tc.want)
		})
	}
}
