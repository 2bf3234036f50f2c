package main

import "fmt"
import "time"
import "unsafe"
import "math/rand"

import "github.com/bnclabs/goarena/lib"
import "github.com/bnclabs/goarena/malloc"
import "github.com/bnclabs/goarena/vector"
import sigar "github.com/cloudfoundry/gosigar"
import hm "github.com/dustin/go-humanize"

type smallobj struct {
	value int64
}

type mediumobj struct {
	values [32]int32
	extra  float64
}

type largeobj struct {
	name [16]byte
	data [100]int64
}

func benchSimple() {
	n := options.n
	fmt.Printf("\n==== simple allocation (%v allocations) ====\n", n)

	timeit("simple", "go runtime", func() {
		objs := make([]*smallobj, 0, n)
		for i := 0; i < n; i++ {
			obj := new(smallobj)
			obj.value = int64(i)
			objs = append(objs, obj)
		}
	})

	arena := newarena("simple", options.blocksize)
	avg := &lib.AverageInt64{}
	timeit("simple", "arena", func() {
		objs := make([]*smallobj, 0, n)
		now := time.Now()
		for i := 0; i < n; i++ {
			obj, err := malloc.NewWith(arena, smallobj{value: int64(i)})
			if err != nil {
				panic(err)
			}
			objs = append(objs, obj)
			if (i+1)%10000 == 0 {
				avg.Add(int64(time.Since(now)))
				now = time.Now()
			}
		}
	})
	if avg.Samples() > 0 {
		fmsg := "  chunks of 10000 allocs, mean:%v min:%v max:%v\n"
		fmt.Printf(fmsg,
			time.Duration(avg.Mean()), time.Duration(avg.Min()),
			time.Duration(avg.Max()))
	}
	printarena(arena)
	arena.Release()

	arena = newarena("simple.adapter", options.blocksize)
	adapter := malloc.Adapt[smallobj](arena)
	timeit("simple", "arena adapter", func() {
		objs := make([]*smallobj, 0, n)
		for i := 0; i < n; i++ {
			elems, err := adapter.Allocate(1)
			if err != nil {
				panic(err)
			}
			elems[0].value = int64(i)
			objs = append(objs, &elems[0])
		}
	})
	arena.Release()

	arena = newarena("simple.reset", options.blocksize)
	timeit("simple", "arena with reset", func() {
		for i := 0; i < n; i++ {
			_, err := malloc.NewWith(arena, smallobj{value: int64(i)})
			if err != nil {
				panic(err)
			}
			if (i+1)%10000 == 0 {
				arena.Reset()
			}
		}
	})
	arena.Release()
}

func benchSizes() {
	n := options.n
	fmt.Printf("\n==== object sizes (%v allocations) ====\n", n)

	fmt.Println("small objects:")
	timeit("sizes", "go runtime", func() {
		objs := make([]*smallobj, 0, n)
		for i := 0; i < n; i++ {
			obj := new(smallobj)
			obj.value = int64(i)
			objs = append(objs, obj)
		}
	})
	arena := newarena("sizes.small", options.blocksize)
	timeit("sizes", "arena", func() {
		objs := make([]*smallobj, 0, n)
		for i := 0; i < n; i++ {
			obj, err := malloc.NewWith(arena, smallobj{value: int64(i)})
			if err != nil {
				panic(err)
			}
			objs = append(objs, obj)
		}
	})
	arena.Release()

	fmt.Println("medium objects:")
	timeit("sizes", "go runtime", func() {
		objs := make([]*mediumobj, 0, n)
		for i := 0; i < n; i++ {
			obj := new(mediumobj)
			for j := range obj.values {
				obj.values[j] = int32(i)
			}
			obj.extra = float64(i) * 1.5
			objs = append(objs, obj)
		}
	})
	arena = newarena("sizes.medium", options.blocksize)
	timeit("sizes", "arena", func() {
		objs := make([]*mediumobj, 0, n)
		for i := 0; i < n; i++ {
			obj, err := malloc.New[mediumobj](arena)
			if err != nil {
				panic(err)
			}
			for j := range obj.values {
				obj.values[j] = int32(i)
			}
			obj.extra = float64(i) * 1.5
			objs = append(objs, obj)
		}
	})
	arena.Release()

	fmt.Println("large objects:")
	nn := n / 10
	timeit("sizes", "go runtime", func() {
		objs := make([]*largeobj, 0, nn)
		for i := 0; i < nn; i++ {
			obj := new(largeobj)
			copy(obj.name[:], "largeobject")
			for j := range obj.data {
				obj.data[j] = int64(j)
			}
			objs = append(objs, obj)
		}
	})
	arena = newarena("sizes.large", 65536)
	timeit("sizes", "arena", func() {
		objs := make([]*largeobj, 0, nn)
		for i := 0; i < nn; i++ {
			obj, err := malloc.New[largeobj](arena)
			if err != nil {
				panic(err)
			}
			copy(obj.name[:], "largeobject")
			for j := range obj.data {
				obj.data[j] = int64(j)
			}
			objs = append(objs, obj)
		}
	})
	printarena(arena)
	arena.Release()
}

func benchFragment() {
	n, cycles := options.n, 10
	fmt.Printf("\n==== fragmentation (%v cycles of %v allocations) ====\n",
		cycles, n/2)

	rng := rand.New(rand.NewSource(42))
	timeit("fragment", "go runtime", func() {
		objs := make([][]byte, n)
		for cycle := 0; cycle < cycles; cycle++ {
			for i := 0; i < n/2; i++ {
				index := rng.Intn(n)
				if objs[index] == nil {
					size := 8 + (i%32)*8
					objs[index] = make([]byte, size)
				}
			}
			for i := 0; i < n/4; i++ {
				objs[rng.Intn(n)] = nil
			}
		}
	})

	rng = rand.New(rand.NewSource(42))
	arena := newarena("fragment", options.blocksize)
	timeit("fragment", "arena with reset", func() {
		objs := make([]unsafe.Pointer, n)
		for cycle := 0; cycle < cycles; cycle++ {
			arena.Reset()
			clear(objs)
			for i := 0; i < n/2; i++ {
				index := rng.Intn(n)
				if objs[index] == nil {
					size := int64(8 + (i%32)*8)
					ptr, err := arena.Alloc(size)
					if err != nil {
						panic(err)
					}
					objs[index] = ptr
				}
			}
		}
	})
	printarena(arena)
	arena.Release()
}

func benchVector() {
	n := options.n
	fmt.Printf("\n==== vector (%v elements) ====\n", n)

	timeit("vector", "go slice int64", func() {
		xs := make([]int64, 0, n)
		for i := 0; i < n; i++ {
			xs = append(xs, int64(i))
		}
	})

	arena := newarena("vector", options.blocksize)
	timeit("vector", "arena vector int64", func() {
		vec, err := vector.New[int64](malloc.Adapt[int64](arena), int64(n))
		if err != nil {
			panic(err)
		}
		for i := 0; i < n; i++ {
			if err := vec.Append(int64(i)); err != nil {
				panic(err)
			}
		}
	})

	timeit("vector", "go slice smallobj", func() {
		xs := make([]smallobj, 0, n)
		for i := 0; i < n; i++ {
			xs = append(xs, smallobj{value: int64(i)})
		}
	})

	arena.Reset()
	timeit("vector", "arena vector smallobj", func() {
		adapter := malloc.Adapt[smallobj](arena)
		vec, err := vector.New[smallobj](adapter, int64(n))
		if err != nil {
			panic(err)
		}
		for i := 0; i < n; i++ {
			if err := vec.Append(smallobj{value: int64(i)}); err != nil {
				panic(err)
			}
		}
	})
	printarena(arena)
	arena.Release()
}

type treenode struct {
	value      int64
	firstchild *treenode
	sibling    *treenode
}

func buildtreego(depth, branching int, counter *int64) *treenode {
	node := &treenode{value: *counter}
	*counter++
	if depth > 0 {
		var last *treenode
		for i := 0; i < branching; i++ {
			child := buildtreego(depth-1, branching, counter)
			if last == nil {
				node.firstchild = child
			} else {
				last.sibling = child
			}
			last = child
		}
	}
	return node
}

func buildtreearena(
	arena *malloc.Arena, depth, branching int, counter *int64) *treenode {

	node, err := malloc.NewWith(arena, treenode{value: *counter})
	if err != nil {
		panic(err)
	}
	*counter++
	if depth > 0 {
		var last *treenode
		for i := 0; i < branching; i++ {
			child := buildtreearena(arena, depth-1, branching, counter)
			if last == nil {
				node.firstchild = child
			} else {
				last.sibling = child
			}
			last = child
		}
	}
	return node
}

func counttree(node *treenode) int64 {
	if node == nil {
		return 0
	}
	count := int64(1)
	for child := node.firstchild; child != nil; child = child.sibling {
		count += counttree(child)
	}
	return count
}

func benchTree() {
	depth, branching := 8, 3
	fmt.Printf("\n==== tree building (depth:%v branching:%v) ====\n",
		depth, branching)

	var stdroot, arenaroot *treenode
	timeit("tree", "go runtime", func() {
		counter := int64(0)
		stdroot = buildtreego(depth, branching, &counter)
	})

	arena := newarena("tree", 65536)
	timeit("tree", "arena", func() {
		counter := int64(0)
		arenaroot = buildtreearena(arena, depth, branching, &counter)
	})

	fmt.Printf("  total nodes: %v, %v\n", counttree(stdroot), counttree(arenaroot))
	printarena(arena)
	arena.Release()
}

func benchBatch() {
	batches, batchsize := 100, 10000
	fmt.Printf("\n==== batch processing (%v batches of %v objects) ====\n",
		batches, batchsize)

	var checksum int64
	timeit("batch", "go runtime", func() {
		for batch := 0; batch < batches; batch++ {
			objs := make([]*smallobj, 0, batchsize)
			for i := 0; i < batchsize; i++ {
				obj := new(smallobj)
				obj.value = int64(i)
				objs = append(objs, obj)
			}
			for _, obj := range objs {
				checksum += obj.value
			}
		}
	})

	timeit("batch", "arena per batch", func() {
		for batch := 0; batch < batches; batch++ {
			arena := newarena("batch", options.blocksize)
			objs := make([]*smallobj, 0, batchsize)
			for i := 0; i < batchsize; i++ {
				obj, err := malloc.NewWith(arena, smallobj{value: int64(i)})
				if err != nil {
					panic(err)
				}
				objs = append(objs, obj)
			}
			for _, obj := range objs {
				checksum += obj.value
			}
			arena.Release()
		}
	})

	h := lib.NewhistorgramInt64(0, 5000, 250)
	arena := newarena("batch.reset", options.blocksize)
	timeit("batch", "arena with reset", func() {
		for batch := 0; batch < batches; batch++ {
			now := time.Now()
			objs := make([]*smallobj, 0, batchsize)
			for i := 0; i < batchsize; i++ {
				obj, err := malloc.NewWith(arena, smallobj{value: int64(i)})
				if err != nil {
					panic(err)
				}
				objs = append(objs, obj)
			}
			for _, obj := range objs {
				checksum += obj.value
			}
			arena.Reset()
			h.Add(int64(time.Since(now) / time.Microsecond))
		}
	})
	arena.Release()
	fmt.Printf("  batch latencies in us: %v\n", h.Logstring())
	fmt.Printf("  checksum: %v\n", checksum)
}

func benchMemory() {
	n := options.n
	fmt.Printf("\n==== memory usage (%v allocations) ====\n", n)

	mem := sigar.Mem{}
	mem.Get()
	fmt.Printf("  free system memory: %v\n", hm.Bytes(mem.Free))

	var requested int64
	rng := rand.New(rand.NewSource(42))
	timeit("memory", "go runtime", func() {
		objs := make([][]byte, 0, n)
		for i := 0; i < n; i++ {
			size := int64(rng.Intn(249) + 8)
			objs = append(objs, make([]byte, size))
			requested += size
		}
	})
	mem.Get()
	fmt.Printf("  free system memory: %v (after go runtime)\n", hm.Bytes(mem.Free))

	rng = rand.New(rand.NewSource(42))
	arena := newarena("memory", 32768)
	timeit("memory", "arena", func() {
		for i := 0; i < n; i++ {
			size := int64(rng.Intn(249) + 8)
			if _, err := arena.Alloc(size); err != nil {
				panic(err)
			}
		}
	})
	mem.Get()
	fmt.Printf("  free system memory: %v (after arena)\n", hm.Bytes(mem.Free))

	_, heap, alloc, overhead := arena.Info()
	fmsg := "  requested:%v reserved:%v allocated:%v overhead:%v " +
		"blocks:%v utilz:%.2f%%\n"
	fmt.Printf(fmsg,
		hm.Bytes(uint64(requested)), hm.Bytes(uint64(heap)),
		hm.Bytes(uint64(alloc)), hm.Bytes(uint64(overhead)),
		arena.Blocks(), arena.Utilization()*100)
	arena.Release()
}
