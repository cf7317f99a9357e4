// Code generated by "enumer -type HashFunc"; hand-maintained here
// because this environment cannot invoke go:generate. Keep in sync
// with the HashFunc const block in hashfunc.go.

package hashwires

import "fmt"

const _HashFuncName = "SHA2SHAKESHAKE256"

var _HashFuncIndex = [...]uint8{0, 4, 9, 17}

func (i HashFunc) String() string {
	if i >= HashFunc(len(_HashFuncIndex)-1) {
		return fmt.Sprintf("HashFunc(%d)", i)
	}
	return _HashFuncName[_HashFuncIndex[i]:_HashFuncIndex[i+1]]
}

var _HashFuncValues = []HashFunc{SHA2, SHAKE, SHAKE256}

var _HashFuncNameToValueMap = map[string]HashFunc{
	_HashFuncName[0:4]:  SHA2,
	_HashFuncName[4:9]:  SHAKE,
	_HashFuncName[9:17]: SHAKE256,
}

// HashFuncString retrieves the HashFunc value corresponding to a name.
func HashFuncString(s string) (HashFunc, error) {
	if v, ok := _HashFuncNameToValueMap[s]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("%s does not belong to HashFunc values", s)
}

// HashFuncValues returns all values of the enum.
func HashFuncValues() []HashFunc {
	return _HashFuncValues
}

// IsAHashFunc returns true if the value is listed in the enum.
func (i HashFunc) IsAHashFunc() bool {
	for _, v := range _HashFuncValues {
		if i == v {
			return true
		}
	}
	return false
}
