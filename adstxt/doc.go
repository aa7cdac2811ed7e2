/*
Package adstxt implements the IAB Tech Lab ads.txt 1.1 and app-ads.txt 1.0
seller authorization files as typed documents.

Parsing is strict and all or nothing: the first invalid line aborts with a
coded error from the errortypes package, and no partial document is ever
returned. Field syntax beyond the grammar (domain shape, contact shape,
duplicate records) is deliberately not parsing's business; the advisory
Validate methods report such findings as warnings.

Serialization is deterministic. A document always renders its variables in a
fixed order followed by its records in source order, so a parse/serialize
round trip is structurally stable even when the input ordered lines
differently.
*/
package adstxt
