package common

import "path"

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// ShortName qualifies name with the alias of pkgPath, as written in source
// ("si.Length"). Names without a package stay unqualified.
func ShortName(pkgPath, name string) string {
	if alias := PkgAlias(pkgPath); alias != "" {
		return alias + "." + name
	}

	return name
}
