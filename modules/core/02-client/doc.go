/*
Package client gates whether the local representation of a remote chain's
state may advance. Given an untrusted header submitted by an arbitrary
caller, ValidateUpdateClient decides Accept or Reject without trusting the
submitter: every structural and temporal precondition is checked against
stored state before the cryptographic verifier is consulted.

The validators are pure reads over the StateReader view; persisting accepted
updates is the responsibility of the keeper subpackage.
*/
package client
