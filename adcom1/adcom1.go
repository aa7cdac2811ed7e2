// Package adcom1 provides AdCOM 1.0 enumerated lists.
//
// https://iabtechlab.com/standards/openmedia/
// https://github.com/InteractiveAdvertisingBureau/AdCOM
package adcom1
