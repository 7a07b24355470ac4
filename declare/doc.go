// Package declare implements the DCL instruction handlers: the pixel and
// vertex declaration dispatch that reserves ids for input/output/sampler/
// texture registers and populates the sidecar (vertex attribute layout,
// descriptor-set bindings) as a side effect.
package declare
