// Package slug builds and validates the URL identifiers used for courses,
// categories and roadmaps.
//
// Make turns a title into a slug:
//
//	slug.Make("React for Beginners")    // "react-for-beginners"
//	slug.Make("AWS & Cloud")            // "aws-and-cloud"
//	slug.Make("Crème brûlée", slug.MaxLength(5)) // "creme"
//
// IsValid checks that a hand-written slug is already canonical, which the
// catalog uses to reject malformed records at startup.
package slug
