// Package orgboard defines the domain model and collaborator contracts for
// the organizational website state store.
//
// The package holds plain value types (bulletin entries, inquiries, site
// settings, member companies), the contracts the state container depends on
// (LocalCache, RemoteStore, TextGenerator), and the sentinel errors shared
// across implementations. It has no behavior of its own beyond validation;
// orchestration lives in pkg/store.
//
// Write policies:
//
//	BBSEntry, Inquiry, RollingImage  -> WritePolicyLocalOnly
//	Settings profile images          -> WritePolicyOptimistic
//	MemberCompany                    -> WritePolicyRemoteAuthoritative
package orgboard
