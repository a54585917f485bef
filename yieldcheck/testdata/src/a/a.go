package a

import "github.com/greenlab/routine"

func yielding() {
	r := routine.New()
	r.Init()
	_ = r.Go(func() {
		for i := 0; i < 10; i++ {
			work()
			routine.Yield()
		}
	})
	r.Run()
}

func starving() {
	r := routine.New()
	r.Init()
	_ = r.Go(func() {
		for { // want `routine body never yields inside this loop`
			work()
		}
	})
	r.Run()
}

func starvingFreestanding() {
	_ = routine.Go(func() {
		for { // want `routine body never yields inside this loop`
			work()
		}
	})
}

func loopWithBreak() {
	_ = routine.Go(func() {
		for {
			if done() {
				break
			}
			routine.Yield()
		}
	})
}

func loopWithReturn() {
	_ = routine.Go(func() {
		for {
			if done() {
				return
			}
			work()
		}
	})
}

func yieldingForever() {
	_ = routine.Go(func() {
		for {
			routine.Yield()
		}
	})
}

func boundedLoop() {
	_ = routine.Go(func() {
		for i := 0; i < 100; i++ {
			work()
		}
	})
}

func nestedLiteralDoesNotRelease() {
	_ = routine.Go(func() {
		f := func() { routine.Yield() }
		_ = f
		for { // want `routine body never yields inside this loop`
			work()
		}
	})
}

func work()      {}
func done() bool { return false }
