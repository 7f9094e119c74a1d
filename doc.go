// Package vtype converts between the textual wire representation of Vertica
// column values and native Go values.
/*
Decode takes the raw field text delivered by the server, the column's Type
descriptor (resolved once per result set from server metadata), and the
session's active timezone, and returns a Value. Values form a closed set of
variants: Null, Bool, Int, Float, Numeric, Text, Bytes, Date, Time, TimeTz,
Timestamp, TimestampTz, Interval, UUID, Array, Set, and Row. Containers nest
arbitrarily; the descriptor drives dispatch.

Encode is the inverse for the client-binding path: it renders a Value as
escaped SQL literal text that is safe to splice directly into a query string
when server-side parameter binding is bypassed. The target type is given as
SQL type name text, as it would appear after a cast operator.

Session carries the connection-scoped timezone. It is consulted only when a
TIMETZ or TIMESTAMPTZ literal does not name its own offset or zone. The
connection layer updates it when it observes a timezone-setting statement; the
codec only reads it.

The codec is purely computational. It performs no I/O, holds no locks, and is
safe for concurrent use as long as each call receives its own raw text and a
timezone snapshot.
*/
package vtype
