// Package techquiry implements the account backend of the TechQuiry Q&A
// platform: user login records, session-backed authentication, and the
// lifecycle service that mediates account creation, update, deletion,
// login, and logout.
//
// Session model:
//   - Every browser session owns exactly one authentication slot. The slot
//     is either empty (anonymous) or holds the id of the authenticated user.
//     SessionManager keeps the slots; SessionHelper is the per-session view
//     the lifecycle service reads and writes.
//
// Lifecycle service:
//   - UserLoginService composes the UserLogins store, the password verifier,
//     and the session slot. Every operation checks the session state first,
//     then validates, then touches the store. Failures surface as one of
//     four error kinds (forbidden operation, invalid request, entity not
//     found, internal error) built on goliatone/go-errors.
//
// Storage:
//   - Login records live in a SQLite database accessed through Bun. The
//     username column carries a UNIQUE constraint; the store, not the
//     service's best-effort pre-check, is the final authority on username
//     uniqueness.
package techquiry
