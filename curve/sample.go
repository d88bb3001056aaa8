// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import "cogentcore.org/core/math32"

// Sample is a frame on a curve at a given arc-length distance:
// a location and orientation, plus the interpolated node attributes
// (up, scale, roll) needed to bend a mesh cross-section onto the path.
type Sample struct {
	// Location is the position on the curve.
	Location math32.Vector3

	// Tangent is the unit tangent of the curve here.
	Tangent math32.Vector3

	// Up is the interpolated up vector hint used to orient the frame.
	Up math32.Vector3

	// Scale is the interpolated cross-section scale:
	// X scales the lateral (local Z) axis, Y the vertical (local Y) axis.
	Scale math32.Vector2

	// Roll is the interpolated roll angle in radians about the tangent.
	Roll float32

	// DistanceInCurve is the arc-length distance of this sample
	// from the start of its curve.
	DistanceInCurve float32

	// TimeInCurve is the curve parameter t in [0, 1] of this sample.
	TimeInCurve float32
}

// Rotation returns the quaternion mapping the local bend frame onto
// this sample: local +X to the tangent, local +Y toward the up hint,
// with the roll applied about the tangent.
func (sp *Sample) Rotation() math32.Quat {
	var q math32.Quat
	q.SetFromRotationMatrix(math32.NewLookAt(math32.Vector3{}, sp.Tangent, sp.Up))
	// NewLookAt points local -Z at the target, so rotate +X into -Z first.
	q.SetMul(math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), math32.DegToRad(90)))
	if sp.Roll != 0 {
		q.SetMul(math32.NewQuatAxisAngle(math32.Vec3(1, 0, 0), sp.Roll))
	}
	return q
}

// Bend transforms a local-space vertex position and normal into bent
// space at this sample. The local X coordinate is discarded: the
// distance along the bend axis is already encoded in the choice of
// sample. The cross-section is scaled by [Sample.Scale], rotated into
// the tangent frame, and translated to the sample location.
func (sp *Sample) Bend(pos, norm math32.Vector3) (bpos, bnorm math32.Vector3) {
	rot := sp.Rotation()
	bpos = math32.Vec3(0, pos.Y*sp.Scale.Y, pos.Z*sp.Scale.X)
	bpos = bpos.MulQuat(rot).Add(sp.Location)
	bnorm = norm.MulQuat(rot)
	return
}

// lerp3 returns the linear interpolation of two vectors at t in [0, 1].
func lerp3(a, b math32.Vector3, t float32) math32.Vector3 {
	return a.Add(b.Sub(a).MulScalar(t))
}

// lerp2 is [lerp3] for 2D vectors.
func lerp2(a, b math32.Vector2, t float32) math32.Vector2 {
	return a.Add(b.Sub(a).MulScalar(t))
}

// lerpSamples returns the linear interpolation of two samples at t in [0, 1],
// with the tangent and up renormalized.
func lerpSamples(a, b Sample, t float32) Sample {
	return Sample{
		Location:        lerp3(a.Location, b.Location, t),
		Tangent:         lerp3(a.Tangent, b.Tangent, t).Normal(),
		Up:              lerp3(a.Up, b.Up, t).Normal(),
		Scale:           lerp2(a.Scale, b.Scale, t),
		Roll:            a.Roll + (b.Roll-a.Roll)*t,
		DistanceInCurve: a.DistanceInCurve + (b.DistanceInCurve-a.DistanceInCurve)*t,
		TimeInCurve:     a.TimeInCurve + (b.TimeInCurve-a.TimeInCurve)*t,
	}
}
