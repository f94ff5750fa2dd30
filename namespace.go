package soaplib

import (
	"strconv"
	"sync"
)

// Well-known namespaces with fixed prefixes.
const (
	NSXSD     = "http://www.w3.org/2001/XMLSchema"
	NSXSI     = "http://www.w3.org/2001/XMLSchema-instance"
	NSWSDL    = "http://schemas.xmlsoap.org/wsdl/"
	NSSoapEnv = "http://schemas.xmlsoap.org/soap/envelope/"
	NSSoapEnc = "http://schemas.xmlsoap.org/soap/encoding/"
)

// LibScope marks descriptors declared by the library itself; resolution
// substitutes the application's target namespace for it.
const LibScope = "soaplib"

var constPrefixes = map[string]string{
	NSXSD:     "xs",
	NSXSI:     "xsi",
	NSWSDL:    "wsdl",
	NSSoapEnv: "soapenv",
	NSSoapEnc: "soapenc",
}

var (
	nsMu     sync.Mutex
	nsPrefix = map[string]string{
		NSXSD:     "xs",
		NSXSI:     "xsi",
		NSWSDL:    "wsdl",
		NSSoapEnv: "soapenv",
		NSSoapEnc: "soapenc",
	}
	nsNext int
)

// NamespacePrefix returns the prefix registered for ns, generating and
// recording a fresh "s0", "s1", ... prefix on first sight. Prefixes are
// process-wide so every document a process emits stays consistent.
func NamespacePrefix(ns string) string {
	nsMu.Lock()
	defer nsMu.Unlock()
	if p, ok := nsPrefix[ns]; ok {
		return p
	}
	p := "s" + strconv.Itoa(nsNext)
	nsNext++
	nsPrefix[ns] = p
	return p
}

// Namespaces returns a snapshot of every registered namespace-to-prefix
// binding, the well-known ones included.
func Namespaces() map[string]string {
	nsMu.Lock()
	defer nsMu.Unlock()
	out := make(map[string]string, len(nsPrefix))
	for ns, p := range nsPrefix {
		out[ns] = p
	}
	return out
}

// isReservedNS reports whether ns belongs to the fixed-prefix set; customized
// types are never left in one.
func isReservedNS(ns string) bool {
	_, ok := constPrefixes[ns]
	return ok
}
