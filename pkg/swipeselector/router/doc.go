// Package router chains selector screens into a wizard with explicit data
// flow and back navigation.
//
// Each screen has its own input and result types and a single transition
// function decides where to go next. When moving forward the transition
// pushes the current screen, its input and the selector position it returned
// onto the stack. Going back pops that entry and hands the saved position to
// the screen again so it reopens on the item the user had chosen.
//
// # Basic Usage
//
//	const (
//	    ScreenSize router.Screen = iota
//	    ScreenToppings
//	)
//
//	r := router.New()
//
//	r.Register(ScreenSize, "size", func(input any) (any, error) {
//	    in := input.(StepInput)
//	    settings := swipeselector.DefaultSwipeSelectSettings()
//	    settings.InitialState = in.Resume
//	    res, err := swipeselector.SwipeSelect("Size", sizes, settings)
//	    if swipeselector.IsCancelled(err) {
//	        return StepResult{Back: true}, nil
//	    }
//	    if err != nil {
//	        return nil, err
//	    }
//	    return StepResult{Choice: res.Item, Resume: &res.State}, nil
//	})
//
//	r.OnTransition(func(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
//	    res := result.(StepResult)
//	    if res.Back {
//	        if entry := stack.Pop(); entry != nil {
//	            return entry.Screen, StepInput{Resume: entry.Resume}
//	        }
//	        return router.ScreenExit, nil
//	    }
//	    stack.Push(from, StepInput{}, res.Resume)
//	    return from + 1, StepInput{}
//	})
//
//	err := r.Run(ScreenSize, StepInput{})
//
// # Resume State
//
// Resume is a carousel.SavedState. It is nil for screens that have nothing
// to restore, such as confirmations.
package router
