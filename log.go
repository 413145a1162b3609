package raycore

import "go.uber.org/zap"

// warnLogger returns the process-wide logger used for InvalidParameter and
// CapacityLimit diagnostics raised from plain constructors (Material,
// Camera, Scene.AddPrimitive) that have no natural place to thread a
// *zap.Logger through their call sites. Call zap.ReplaceGlobals to install
// a real logger; the default is zap.NewNop(), so these warnings are
// silent unless a caller opts in. Out-of-range input is clamped, never
// fatal.
func warnLogger() *zap.Logger {
	return zap.L()
}

func warnField(key string, value float64) zap.Field {
	return zap.Float64(key, value)
}

func zapIntField(key string, value int) zap.Field {
	return zap.Int(key, value)
}
