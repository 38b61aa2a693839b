package quantity

import "sort"

// Prefix is a metric or binary unit prefix.
type Prefix struct {
	Name   string
	Symbol string
	Factor float64
}

var prefixes = map[string]Prefix{
	"Quetta": {"Quetta", "Q", 1e30},
	"Ronna":  {"Ronna", "R", 1e27},
	"Yotta":  {"Yotta", "Y", 1e24},
	"Zetta":  {"Zetta", "Z", 1e21},
	"Exa":    {"Exa", "E", 1e18},
	"Peta":   {"Peta", "P", 1e15},
	"Tera":   {"Tera", "T", 1e12},
	"Giga":   {"Giga", "G", 1e9},
	"Mega":   {"Mega", "M", 1e6},
	"Kilo":   {"Kilo", "k", 1e3},
	"Hecto":  {"Hecto", "h", 1e2},
	"Deca":   {"Deca", "da", 1e1},
	"Deci":   {"Deci", "d", 1e-1},
	"Centi":  {"Centi", "c", 1e-2},
	"Milli":  {"Milli", "m", 1e-3},
	"Micro":  {"Micro", "μ", 1e-6},
	"Nano":   {"Nano", "n", 1e-9},
	"Pico":   {"Pico", "p", 1e-12},
	"Femto":  {"Femto", "f", 1e-15},
	"Atto":   {"Atto", "a", 1e-18},
	"Zepto":  {"Zepto", "z", 1e-21},
	"Yocto":  {"Yocto", "y", 1e-24},
	"Ronto":  {"Ronto", "r", 1e-27},
	"Quecto": {"Quecto", "q", 1e-30},

	"Kibi": {"Kibi", "Ki", 1 << 10},
	"Mebi": {"Mebi", "Mi", 1 << 20},
	"Gibi": {"Gibi", "Gi", 1 << 30},
	"Tebi": {"Tebi", "Ti", 1 << 40},
	"Pebi": {"Pebi", "Pi", 1 << 50},
	"Exbi": {"Exbi", "Ei", 1 << 60},
	"Zebi": {"Zebi", "Zi", 1 << 70},
	"Yobi": {"Yobi", "Yi", 1 << 80},
}

// LookupPrefix returns the prefix with the given name.
func LookupPrefix(name string) (Prefix, bool) {
	p, ok := prefixes[name]
	return p, ok
}

// PrefixNames returns the names of all known prefixes, sorted.
func PrefixNames() []string {
	names := make([]string, 0, len(prefixes))
	for name := range prefixes {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
