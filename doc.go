/*
Package sorted offers ordered set and map containers with value semantics.

# Sorted containers

Set and Map keep their elements permanently sorted by key in a
self-balancing binary search tree (a red-black tree, provided by package
rbtree). Iteration is always in ascending key order and deterministic.

Due to their internal structure sorted containers have performance
characteristics differing from Go maps or sorted slices:

	Operation      |  Sorted container  |  Go map
	---------------+--------------------+--------
	Lookup         |   O(log n)         |   O(1)
	Insert         |   O(log n)         |   O(1)
	Delete         |   O(log n)         |   O(1)
	Ordered walk   |   O(n)             |   n/a
	Min/Max        |   O(1)             |   O(n)
	Clone          |   O(1)             |   O(n)

# Value semantics and copy-on-write

Clone creates an independent container in constant time: both containers
share one tree until either of them mutates, at which point the mutating
container first deep-copies the shared storage (copy-on-write). Mutating
a clone therefore never changes the original, without the cost of eager
copying. Sharing is tracked through an explicit owner count, not through
locks; containers are not safe for concurrent mutation.

Positions (opaque handles into a container, see package rbtree) passed
as arguments to the very call that triggers a copy are re-targeted onto
the fresh storage automatically. Positions a caller captured earlier and
holds independently across an intervening mutation are NOT re-targeted;
holding positions across mutations of a shared container is unsupported.

# Set algebra

Sets and maps of equal key type combine through linear merge walks over
the two ordered operands: Union, Intersection, SymmetricDifference,
Subtract and the subset/disjointness tests all run in O(m+n), using
hint-accelerated insertion internally. Overloads taking an arbitrary,
possibly unordered sequence fall back to per-element probing.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package sorted

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
