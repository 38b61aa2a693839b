// Package quantity defines the data model of the generator: the raw
// definitions produced by binding annotations, the processed definitions
// produced by validation and the resolved definitions handed to emission.
//
// Raw definitions are flat value structs. Each carries a Locations struct
// recording the span of every argument that was written; a field is
// explicitly set exactly when its span is non-zero, independently of the
// value stored in the field.
package quantity
