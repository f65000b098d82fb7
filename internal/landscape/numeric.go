package landscape

// NumericalGradient estimates the gradient of pot at x by central finite
// differences with step eps. It is meant for verifying analytic gradients,
// not for production evaluation.
func NumericalGradient(pot Potential, x Coords, eps float64) (Coords, error) {
	grad := make(Coords, len(x))
	xw := x.Clone()
	for i := range x {
		xw[i] = x[i] + eps
		ep, err := pot.Energy(xw)
		if err != nil {
			return nil, err
		}
		xw[i] = x[i] - eps
		em, err := pot.Energy(xw)
		if err != nil {
			return nil, err
		}
		xw[i] = x[i]
		grad[i] = (ep - em) / (2 * eps)
	}
	return grad, nil
}

// NumericalHessian estimates the Hessian of pot at x by central finite
// differences of the analytic gradient.
func NumericalHessian(pot Potential, x Coords, eps float64) (*Hessian, error) {
	n := len(x)
	hess := NewHessian(n)
	xw := x.Clone()
	for i := 0; i < n; i++ {
		xw[i] = x[i] + eps
		_, gp, err := pot.EnergyGradient(xw)
		if err != nil {
			return nil, err
		}
		xw[i] = x[i] - eps
		_, gm, err := pot.EnergyGradient(xw)
		if err != nil {
			return nil, err
		}
		xw[i] = x[i]
		for j := 0; j < n; j++ {
			hess.Set(i, j, (gp[j]-gm[j])/(2*eps))
		}
	}
	return hess, nil
}
