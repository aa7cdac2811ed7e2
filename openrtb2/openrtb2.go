// Package openrtb2 provides the OpenRTB 2.6 transaction objects adjacent to
// seller authorization: the bid request source, the supply chain it carries,
// and the publisher identity that ads.txt account ids refer to.
//
// https://iabtechlab.com/standards/openrtb/
package openrtb2
