// Package layout computes bubble-chart geometry: circle positions and
// radii from weighted rows, and wrapped text labels that fit inside each
// circle.
//
// Packing uses the front-chain algorithm from Wang et al., "Visualization
// of Large Hierarchical Data by Circle Packing" (CHI 2006): circles are
// placed one at a time tangent to the chain of circles already on the
// boundary, then the smallest enclosing circle of the arrangement is
// scaled to fit the target bounding box. The enclosing-circle search uses
// a fixed-seed linear congruential generator, so the entire computation is
// deterministic: identical inputs produce bit-identical output.
//
// Label fitting is an approximation. Text wraps greedily against the
// horizontal chord of the circle at each line's vertical offset, and very
// long names in very small circles may still overflow once the font size
// reaches its legibility floor. That trade is accepted; the layout is
// decorative, not correctness-critical.
package layout
