// Command lvmarkov evaluates a discrete-time Markov chain and prints how its
// state distribution evolves, step by step and through p(0)·Pⁿ.
//
// Usage:
//
//	lvmarkov                       # built-in five-state scenario
//	lvmarkov run --config chain.yaml --steps 10 --backend gonum
//	lvmarkov validate --config chain.yaml
//	lvmarkov version
package main

func main() {
	Execute()
}
