package maths

// denseVector 稠密向量实现
// 基于 DataManager 实现 Vector 接口
type denseVector[T Number] struct {
	DataManager[T]
}

// NewDenseVector 创建新的稠密向量
func NewDenseVector[T Number](length int) Vector[T] {
	return &denseVector[T]{
		DataManager: NewDataManager[T](length),
	}
}

// NewDenseVectorWithData 从现有数据创建稠密向量
func NewDenseVectorWithData[T Number](data []T) Vector[T] {
	return &denseVector[T]{
		DataManager: NewDataManagerWithData(data),
	}
}

// Base 获取底层
func (v *denseVector[T]) Base() Vector[T] {
	return v
}

// BuildFromDense 从稠密向量构建向量
func (v *denseVector[T]) BuildFromDense(dense []T) {
	if len(dense) != v.Length() {
		panic("dimension mismatch")
	}
	for i := 0; i < v.Length(); i++ {
		v.Set(i, dense[i])
	}
}

// Copy 将自身值复制到 a 向量
func (v *denseVector[T]) Copy(a Vector[T]) {
	switch target := a.(type) {
	case *denseVector[T]:
		v.DataManager.Copy(target.DataManager)
	default:
		var zero T
		for i := 0; i < v.Length(); i++ {
			value := v.Get(i)
			if value != zero {
				a.Set(i, value)
			}
		}
	}
}

// ToDense 转换为稠密切片
func (v *denseVector[T]) ToDense() []T {
	return v.DataCopy()
}

// DotProduct 计算与另一个向量的点积
func (v *denseVector[T]) DotProduct(other Vector[T]) T {
	if other.Length() != v.Length() {
		panic("vector dimension mismatch")
	}
	var result T
	for i := 0; i < v.Length(); i++ {
		result += v.Get(i) * other.Get(i)
	}
	return result
}

// Scale 向量缩放
func (v *denseVector[T]) Scale(scalar T) {
	for i := 0; i < v.Length(); i++ {
		v.Set(i, v.Get(i)*scalar)
	}
}

// Add 向量加法
func (v *denseVector[T]) Add(other Vector[T]) {
	if other.Length() != v.Length() {
		panic("vector dimension mismatch")
	}
	for i := 0; i < v.Length(); i++ {
		v.Increment(i, other.Get(i))
	}
}

// MaxAbs 获取向量中绝对值最大的元素
func (v *denseVector[T]) MaxAbs() T {
	var best T
	bestMag := -1.0
	for i := 0; i < v.Length(); i++ {
		val := v.Get(i)
		if mag := abs(val); mag > bestMag {
			bestMag = mag
			best = val
		}
	}
	return best
}
