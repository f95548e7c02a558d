/*

Package vesting implements time-locked custody of fungible funds.

A claim holds a deposited amount under a custody account controlled by
this extension. The amount becomes available to the claim holder linearly
over a period of time: nothing can be withdrawn before the cliff, the full
amount is available once the period is over, and in between the holder is
entitled to the elapsed fraction of the total, rounded down.

The holder of a claim can be changed without moving the funds. The new
holder acquires all future entitlement, the released amount so far stays
with the record.

All handlers persist the record state before any funds are moved. A failed
funds transfer aborts the whole transaction, so either both the record and
the wallet are updated or neither is.

*/
package vesting
