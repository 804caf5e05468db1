// Package css implements the atomic-CSS declaration table used by the
// renderer.
//
// Style declarations attached to elements are not serialized as style="…"
// attributes. Each distinct normalized declaration is assigned a short
// generated utility class exactly once per render; elements reference the
// class and the document head emits one rule per table entry, in
// first-occurrence order.
//
// The table is render-call scoped: it lives and dies with a rendering
// Context, so concurrent renders never share generated class names.
package css
