// Package domain extracts structured forecast records from National
// Weather Service (NWS) Coastal Waters Forecast (CWF) bulletins.
//
// # Data Source
//
// CWF bulletins are free-form text products issued per marine zone group
// by coastal Weather Forecast Offices, served as HTML-wrapped plain text
// at https://forecast.weather.gov/product.php. One product covers many
// zones; each zone's section begins with a header line carrying the zone
// identifier and ends at the next "$$" marker line.
//
// # Bulletin Conventions
//
// Zone headers:
//
//	A zone identifier is three letters plus three digits, e.g. "AMZ651".
//	Most zones head their own section. Adjacent zones sharing one forecast
//	are bulletined under a combined range header that spells the full
//	first identifier and the digits of the last, joined by "-" or ">":
//	"GMZ042-044" or "GMZ042>044". The same zone may appear solo in other
//	issuances, so both spellings have to match.
//
// Period headers:
//
//	Forecast periods start with a dot-led uppercase label line:
//
//	  .TODAY...East winds 10 to 15 knots. Seas 2 to 4 feet.
//	  .TONIGHT...Southeast winds around 10 knots.
//	  .SATURDAY...
//
//	Which labels name the target period depends on the clock: before local
//	noon the target is today, labeled "TODAY" or the current weekday name;
//	from noon on it is tomorrow, labeled with tomorrow's weekday name.
//	Weekday labels appear both abbreviated ("SAT") and in full
//	("SATURDAY").
//
// Hazard headlines:
//
//	Advisories are embedded as "..."-delimited headlines near the top of a
//	zone section, e.g. "...SMALL CRAFT ADVISORY IN EFFECT THROUGH THIS
//	EVENING...". The words "caution" and "advisory" anywhere in the
//	section are the detection signal; the first delimited span is the
//	headline text.
//
// # Field Normalization
//
// The broadcast graphics system wants short fixed-shape fields, not
// prose:
//
//	Wind:  "<DIR[-DIR]> <N[-M]>[ (G)] kts"  e.g. "NE-E 10-15 (20) kts"
//	       Full compass words map to uppercase abbreviations (north -> N,
//	       northeast -> NE, ...); "to" ranges become hyphens; gusts append
//	       parenthetically.
//	Seas:  "[around ]H[-H2][ (O)] ft"       e.g. "around 3 (5) ft"
//	       The occasional value comes from ", occasionally to O feet".
//	Inshore waters: a fixed vocabulary, first match in severity order:
//	       rough, choppy, moderate -> "mod chop", light -> "light chop",
//	       smooth. Unrecognized descriptions pass through lower-cased.
//
// Absence of any field is an empty string, never an error: a record's
// identity (zone, city, period, forecast text, alert flags) stands on its
// own even when a derived field does not parse.
package domain
