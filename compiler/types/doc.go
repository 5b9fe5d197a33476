/*
Package types is the compile-time type model of the slate toolchain.

Every type expressible in the language has exactly one live canonical
instance per Registry, so structural equality is pointer equality in
the common case. Types are immutable and answer size, alignment,
conversion, call-compatibility and inheritance questions for the
checker and the code generator.

Construction goes through the Registry; invalid shapes (empty tuple or
union, a function without a return type) fail construction with an
error. Queries never fail, they return sentinels: nil, NotFound, -1.
*/
package types
