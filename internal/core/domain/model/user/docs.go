// Package user provides the User aggregate: the account that owns orders.
//
// Key business rules:
//   - Email is required, trimmed and lower-cased; uniqueness is enforced by the store
//   - First and last names are required
//   - The password is only ever held as a hash produced by a ports.PasswordHasher
//   - Roles are "user" (default) and "admin"; only admins may act on other users' resources
package user
