// Package match implements the two eligibility searches of a dispatch
// attempt: spare part selection by keyword matching against the inventory
// catalog, and technician selection by skill and availability against the
// staff roster. Both searches are pure functions over a snapshot and
// deterministic, with documented tie-break orders.
package match
