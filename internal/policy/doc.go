// Package policy holds the two safety checks every action passes before it
// may run: path containment inside a sandbox root, and membership of the
// action kind in a whitelist. The checks are independent and composable;
// neither one implies the other.
package policy
