package seeder

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/Lumos-Labs-HQ/seedling/internal/store"
)

// Generator synthesizes one plausible value per field from its metadata.
// Link resolution performs read-only store lookups; everything else is pure.
type Generator struct {
	store store.Store
	rand  *rand.Rand
}

// GenFunc produces a value for one field, or reports none. company is the
// company context link targets may resolve against.
type GenFunc func(g *Generator, f store.FieldDef, company string) (any, bool)

// generators dispatches by field type tag. Types with no entry (child
// tables, layout fields) are never synthesized.
var generators = map[store.FieldType]GenFunc{
	store.TypeData:      genShortText,
	store.TypeSmallText: genShortText,
	store.TypeLongText:  genLongText,
	store.TypeText:      genLongText,
	store.TypeInt:       genInt,
	store.TypeFloat:     genUnit,
	store.TypeCurrency:  genUnit,
	store.TypePercent:   genUnit,
	store.TypeCheck:     genCheck,
	store.TypeDate:      genDate,
	store.TypeDatetime:  genDatetime,
	store.TypeTime:      genTime,
	store.TypeSelect:    genSelect,
	store.TypeLink:      genLink,
}

// Value synthesizes a value for the field, or reports that the field should
// stay empty.
func (g *Generator) Value(f store.FieldDef, company string) (any, bool) {
	gen, ok := generators[f.Fieldtype]
	if !ok {
		return nil, false
	}
	return gen(g, f, company)
}

const codeAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// code returns a short random alphanumeric suffix so generated text is
// distinguishable across records.
func (g *Generator) code() string {
	b := make([]byte, 8)
	for i := range b {
		b[i] = codeAlphabet[g.rand.Intn(len(codeAlphabet))]
	}
	return string(b)
}

func labelOrName(f store.FieldDef) string {
	if l := strings.TrimSpace(f.Label); l != "" {
		return l
	}
	return f.Fieldname
}

func genShortText(g *Generator, f store.FieldDef, _ string) (any, bool) {
	return fmt.Sprintf("Demo %s %s", labelOrName(f), g.code()), true
}

func genLongText(_ *Generator, f store.FieldDef, _ string) (any, bool) {
	return fmt.Sprintf("Demo %s content.", labelOrName(f)), true
}

func genInt(g *Generator, _ store.FieldDef, _ string) (any, bool) {
	return 1 + g.rand.Intn(10), true
}

func genUnit(_ *Generator, _ store.FieldDef, _ string) (any, bool) {
	return 1.0, true
}

// Required checks are always true; optional ones flip a coin.
func genCheck(g *Generator, f store.FieldDef, _ string) (any, bool) {
	if f.Reqd {
		return true, true
	}
	return g.rand.Intn(2) == 1, true
}

func genDate(_ *Generator, _ store.FieldDef, _ string) (any, bool) {
	return time.Now().Format(store.DateFormat), true
}

func genDatetime(_ *Generator, _ store.FieldDef, _ string) (any, bool) {
	return time.Now().Format(store.DatetimeFormat), true
}

func genTime(_ *Generator, _ store.FieldDef, _ string) (any, bool) {
	return "09:00:00", true
}

// genSelect picks the first plain option, skipping "Link:"-style entries;
// an empty option list yields no value.
func genSelect(_ *Generator, f store.FieldDef, _ string) (any, bool) {
	opts := f.SelectOptions()
	if len(opts) == 0 {
		return nil, false
	}
	for _, o := range opts {
		if !strings.HasPrefix(strings.ToLower(o), "link:") {
			return o, true
		}
	}
	return opts[0], true
}

// genLink resolves a link target to an existing record. Company, User and
// Currency have fixed fallbacks; any other target resolves to any one
// existing record, or nothing. Lookup failures mean "no value", never an
// error.
func genLink(g *Generator, f store.FieldDef, company string) (any, bool) {
	target := f.LinkTarget()
	if target == "" {
		return nil, false
	}

	switch target {
	case "Company":
		if company != "" {
			return company, true
		}
		if name := store.First(g.store, "Company", nil); name != "" {
			return name, true
		}
		return nil, false

	case "User":
		// The administrative user always exists.
		return "Administrator", true

	case "Currency":
		if company != "" {
			if v, err := g.store.GetValue("Company", company, "default_currency"); err == nil {
				if cur, ok := v.(string); ok && cur != "" {
					return cur, true
				}
			}
		}
		if name := store.First(g.store, "Currency", nil); name != "" {
			return name, true
		}
		return "USD", true
	}

	if name := store.First(g.store, target, nil); name != "" {
		return name, true
	}
	return nil, false
}
