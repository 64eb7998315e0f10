// Package widgets provides the Mosaic component catalog: buttons, inputs,
// badges, tabs, modals, toasts, the data table, and the date picker, plus the
// small set of structural widgets they compose (Text, Box, Row, Column,
// Padding, Stack, GestureDetector).
//
// Widgets are immutable struct-literal configurations in the core framework's
// style. Interactive widgets take callbacks and leave state ownership with
// the caller where practical; the stateful ones (DataTable, DatePicker,
// ToastHost, Spinner, TextField) own only interaction state such as sort
// order, focus, or an animation controller.
package widgets
