/*
Package viz renders the internal structure of sorted containers for
debugging. Trees are drawn sideways onto a terminal, with red nodes
highlighted, or exported as GraphViz DOT via the rbtree package.

Output of this package is meant for human eyes during development and
carries no stability guarantee.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package viz
