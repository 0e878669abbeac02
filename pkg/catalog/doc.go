// Package catalog loads YAML manifests naming a set of record files.
//
// A catalog lists device and product record files relative to a store
// directory:
//
//	version: 1
//	devices:
//	  - name: charger
//	    file: charger.xml
//	products:
//	  - file: sponge.xml
//
// The entry name is optional and purely informational; the file is
// what gets loaded.
package catalog
