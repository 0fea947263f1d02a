// Package patternfile loads, validates and writes the YAML config of the pattern
// generator.
//
// A config names the package to load and the struct types to generate pattern
// types for. Per field, a type may skip the field, match it with the pattern of
// another configured type, or compare it with a custom function:
//
//	package: assertr/examples/shop
//	output: shop_pattern.go
//	types:
//	  - Address
//	  - name: Person
//	    fields:
//	      Address:
//	        pattern: Address
//	  - name: Order
//	    pattern: OrderMatcher
//	    fields:
//	      Metadata: skip
//	      PlacedAt:
//	        compare: SameMinute
package patternfile
