package renderer

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"
	"text/template"

	"github.com/etnz/fintrack"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed templates/*.md
var templates embed.FS

// Transactions renders the ledger entries as a markdown table, in the given order.
func Transactions(entries []fintrack.Entry, currency string) string {
	return renderTemplate("transactions", "transactions.md", nil, currency, struct {
		Entries []fintrack.Entry
	}{entries})
}

// Portfolio renders the holdings of p, their totals and the diversification.
// Symbols held in several line items also get a consolidated positions table.
func Portfolio(p *fintrack.Portfolio, currency string) string {
	view := portfolioView{Portfolio: p}
	for h := range p.Holdings() {
		view.Lines = append(view.Lines, h)
	}
	positions := p.Positions()
	if len(positions) < p.Len() {
		view.Positions = positions
	}
	view.Diversification = shares(p.Diversification())
	partials := map[string]string{
		"diversification": "diversification.md",
	}
	return renderTemplate("portfolio", "portfolio.md", partials, currency, view)
}

// Summary renders the financial summary.
func Summary(s fintrack.Summary, currency string) string {
	view := summaryView{Summary: s, Diversification: shares(s.Diversification)}
	for _, c := range fintrack.Categories() {
		if v, ok := s.ExpenseByCategory[c]; ok {
			view.ByCategory = append(view.ByCategory, categoryAmount{Category: c, Amount: v})
		}
	}
	partials := map[string]string{
		"diversification": "diversification.md",
	}
	return renderTemplate("summary", "summary.md", partials, currency, view)
}

// HTML converts a markdown report into an HTML fragment, tables included.
func HTML(markdown string) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("cannot convert report to HTML: %w", err)
	}
	return buf.String(), nil
}

type portfolioView struct {
	*fintrack.Portfolio
	Lines           []*fintrack.Holding
	Positions       []fintrack.Position
	Diversification []share
}

type summaryView struct {
	fintrack.Summary
	ByCategory      []categoryAmount
	Diversification []share
}

type categoryAmount struct {
	Category fintrack.Category
	Amount   decimal.Decimal
}

type share struct {
	Kind fintrack.AssetKind
	Pct  fintrack.Percent
}

// shares lists the diversification in asset kind order.
func shares(div map[fintrack.AssetKind]fintrack.Percent) []share {
	var res []share
	for _, k := range fintrack.AssetKinds() {
		if v, ok := div[k]; ok {
			res = append(res, share{Kind: k, Pct: v})
		}
	}
	return res
}

// cell makes text safe to use in a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\r\n", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

func funcs(currency string) template.FuncMap {
	return template.FuncMap{
		"money":  func(d decimal.Decimal) string { return Money(d, currency) },
		"signed": func(d decimal.Decimal) string { return SignedMoney(d, currency) },
		"cell":   cell,
		"isExpense": func(k fintrack.Kind) bool {
			return k == fintrack.Expense
		},
	}
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, currency string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs(currency)).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	names := make([]string, 0, len(partials))
	for name := range partials {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		file := partials[name]
		content, err := fs.ReadFile(templates, "templates/"+file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
