/*
Package timelock implements an all-or-nothing time lock for single asset
units.

An owner can move any unit they hold into custody for a fixed period.
While locked the unit sits on a custody account derived from the lock key
and cannot be moved by anyone. Once the unlock time is reached the unit
can be returned to the owner, in full, and the lock record is removed.
Unlocking requires no signature: the unit can only ever go back to the
owner recorded in the lock, so anyone may trigger the release.

The lock record is always updated before the unit moves, so a handler
re-entered through the unit transfer observes the store in its final
state.
*/
package timelock
