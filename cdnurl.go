package nbexport

import "strings"

// DefaultBaseCDN is used when no base CDN is configured or discovered.
const DefaultBaseCDN = "https://cdn.jsdelivr.net/npm/"

// DeriveCDNURL builds the fallback URL for a module on a CDN.
//
// The module name is split into a package name and a file name at the
// first slash. Namespaced packages ("@scope/pkg/file") split at the
// second slash instead, so the namespace stays part of the package name.
// Without a slash (or a second slash for namespaced packages) the whole
// name is the package and the file defaults to "index".
//
//	DeriveCDNURL("foo", "1.2.3", "https://cdn/")            // https://cdn/foo@1.2.3/dist/index
//	DeriveCDNURL("foo/bar", "1.0.0", "https://cdn/")        // https://cdn/foo@1.0.0/dist/bar
//	DeriveCDNURL("@scope/pkg/sub", "2.0.0", "https://cdn/") // https://cdn/@scope/pkg@2.0.0/dist/sub
//
// The result is a pure function of its arguments.
func DeriveCDNURL(moduleName, moduleVersion, baseCDN string) string {
	fileName := "index"
	packageName := moduleName

	split := strings.Index(moduleName, "/")
	if split != -1 && strings.HasPrefix(moduleName, "@") {
		// Namespaced package: skip past the namespace segment.
		second := strings.Index(moduleName[split+1:], "/")
		if second == -1 {
			split = -1
		} else {
			split += 1 + second
		}
	}

	if split != -1 {
		fileName = moduleName[split+1:]
		packageName = moduleName[:split]
	}

	return baseCDN + packageName + "@" + moduleVersion + "/dist/" + fileName
}
