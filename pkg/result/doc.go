// Package result models the calculation output and turns it into display
// sections.
//
// A Result is a list of named groups, each an ordered list of metrics. JSON
// decoding keeps the key order of the wire payload, so the presenter can list
// metrics exactly as the calculation service emitted them. Only the three
// known groups are presented, always in the order vessel characteristics,
// propulsion parameters, performance.
package result
