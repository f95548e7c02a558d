/*
Package unit implements a minimal registry of single asset units.

A unit is a non divisible item, identified by an asset class name and an
ID unique within that class. Every unit has exactly one holder. Units are
registered by a configured issuer or at genesis and can be moved between
holders by the current holder.

Other extensions can manage units through the Controller without direct
access to the storage.
*/
package unit
