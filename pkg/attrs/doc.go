// Package attrs is the boundary between the engine and any markup layer.
//
// Renderers never inspect items directly. They call ForToast and Viewport
// and apply the returned data attributes to their elements; stylesheets
// select on those attributes.
package attrs
