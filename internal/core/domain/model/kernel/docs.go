// Package kernel provides the domain primitives shared by every aggregate of the
// ordering system. Today that is the ID value object: the positive integer
// identifier the store assigns to users, orders, order items and products.
package kernel
