package ml

import (
	"math"

	"github.com/drakos74/go-ex-machina/xmachina/ml"
	"github.com/drakos74/go-ex-machina/xmachina/net"
	"github.com/drakos74/go-ex-machina/xmachina/net/ff"
	"github.com/drakos74/go-ex-machina/xmath"
)

// Network is a small feed-forward classifier over the nine measurements,
// kept as a sanity check next to the logistic model.
type Network struct {
	net    *ff.Network
	epochs int
}

// NewNetwork creates the default network : 9 inputs, tanh hidden layers,
// 2-class softmax output.
func NewNetwork(epochs int) *Network {
	rate := ml.Learn(1, 0.1)

	initW := xmath.Rand(0, 1, math.Sqrt)
	initB := xmath.Rand(0, 1, math.Sqrt)
	network := ff.New(9, 2).
		Add(18, net.NewBuilder().
			WithModule(ml.Base().
				WithRate(rate).
				WithActivation(ml.TanH)).
			WithWeights(initW, initB).
			Factory(net.NewActivationCell)).
		Add(2, net.NewBuilder().
			WithModule(ml.Base().
				WithRate(rate).
				WithActivation(ml.TanH)).
			WithWeights(initW, initB).
			Factory(net.NewActivationCell)).
		Add(2, net.NewBuilder().CellFactory(net.NewSoftCell))
	network.Loss(ml.Pow)

	return &Network{net: network, epochs: epochs}
}

// Train runs the epochs over the training rows with one-hot encoded labels
// and returns the loss of the final epoch.
func (n *Network) Train(x [][]float64, y []float64) float64 {
	loss := 0.0
	for e := 0; e < n.epochs; e++ {
		loss = 0.0
		for i, row := range x {
			inp := xmath.Vec(len(row)).With(row...)
			out := xmath.Vec(2).With(oneHot(y[i])...)
			l, _ := n.net.Train(inp, out)
			loss += l.Norm()
		}
	}
	return loss / float64(len(x))
}

// Predict returns the class with the strongest activation.
func (n *Network) Predict(x []float64) float64 {
	inp := xmath.Vec(len(x)).With(x...)
	outp := n.net.Predict(inp)
	if outp[1] > outp[0] {
		return 1
	}
	return 0
}

// Accuracy scores the network on the given rows.
func (n *Network) Accuracy(x [][]float64, y []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	correct := 0
	for i, row := range x {
		if n.Predict(row) == y[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(x))
}

func oneHot(label float64) []float64 {
	if label == 1 {
		return []float64{0, 1}
	}
	return []float64{1, 0}
}
